package readme

// Section titles. Anchors are derived from these, so changing one changes
// the links of existing documents.
const (
	TitleProjectType  = "Project Type"
	TitleNotes        = "Additional Notes"
	TitleMonorepo     = "Monorepo Structure"
	TitleDocs         = "Documentation"
	TitleMedia        = "Media"
	TitleTechStack    = "Tech Stack"
	TitleI18n         = "Internationalization"
	TitleFeatures     = "Features"
	TitleDeployment   = "Deployment"
	TitleMainEntry    = "Main Entry Point"
	TitleUsage        = "Usage Examples"
	TitleCLI          = "CLI Usage"
	TitleDependencies = "Dependencies"
	TitleSecurity     = "Security"
	TitleSetup        = "Setup"
	TitleRun          = "Running the Project"
	TitleTesting      = "Testing"
	TitlePrinciples   = "Design Principles"
	TitleContributing = "Contributing"
	TitleRemoteDev    = "Remote Development"
	TitleIgnored      = "Ignored Files"
	TitleLicense      = "License"
)
