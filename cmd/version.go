package cmd

import goversion "github.com/caarlos0/go-version"

const (
	application = "sample-app"
	description = "A small social network of users, microposts and follows."
	website     = "https://github.com/sanyco86/sample-app"
)

// BuildVersion fills the version info with the values injected at link time.
func BuildVersion(version, commit, date, builtBy string) goversion.Info {
	return goversion.GetVersionInfo(
		goversion.WithAppDetails(application, description, website),
		func(i *goversion.Info) {
			if version != "" {
				i.GitVersion = version
			}
			if commit != "" {
				i.GitCommit = commit
			}
			if date != "" {
				i.BuildDate = date
			}
			if builtBy != "" {
				i.BuiltBy = builtBy
			}
		},
	)
}
