package git

// CloneParams contains parameters for Clone.
type CloneParams struct {
	RepoURL    string
	TargetPath string
}
