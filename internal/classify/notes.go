package classify

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/readmegen/internal/signals"
)

var i18nLibs = []string{"i18next", "react-intl", "vue-i18n", "next-i18next", "formatjs", "gettext", "polyglot", "lingui"}

// DetectI18n returns one sentence describing internationalization support, or
// "" when there is no evidence. A locales folder outranks library evidence.
func DetectI18n(s *signals.Signals) string {
	if s.HasRootName("locales") || s.HasRootName("locale") {
		return "This project supports internationalization (i18n) via a locales folder."
	}
	for _, name := range s.RootNames {
		for _, lib := range i18nLibs {
			if strings.Contains(name, lib) {
				return "Internationalization (i18n) support detected via libraries."
			}
		}
	}
	for _, lib := range i18nLibs {
		if s.Manifest.HasDependency(lib) || s.Requirements.Has(lib) {
			return fmt.Sprintf("Internationalization (i18n) support detected via %s.", lib)
		}
	}
	return ""
}

var securityLibs = []string{
	"helmet", "cors", "jsonwebtoken", "bcrypt", "argon2", "passport", "express-rate-limit",
	"dotenv", "secure", "pyjwt", "cryptography", "python-dotenv",
}

// DetectSecurity returns one security note, or "". Local secret material
// (.env, then secrets/) is checked before, and short-circuits, library evidence.
func DetectSecurity(s *signals.Signals) string {
	if s.HasRootName(".env") {
		return "Sensitive configuration detected in `.env` file. **Do not commit secrets to version control.**"
	}
	if s.HasRootName("secrets") {
		return "This project uses a `secrets/` folder. Store sensitive files securely and do not commit them."
	}
	for _, lib := range securityLibs {
		if s.Manifest.HasDependency(lib) || s.Requirements.Has(lib) {
			return fmt.Sprintf("Security library detected: **%s**. Follow best practices for authentication and data protection.", lib)
		}
	}
	return ""
}
