// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	FeatureNameMissingId Id = iota + 1
	TargetExistsId
	ModuleFileNotFoundId
	ProvidersArrayMissingId
	ConfigLoadFailedId
	HookFailedId
)

type MarkdownMsg string

type HttpLink string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // documentation links shown in the "See also" section
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also: "
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "]"
		}
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	featureNameMissingIssue = &Issue{
		id: FeatureNameMissingId,
		mdMsg: `
# Feature name missing!

Every generation needs a feature name to derive class and file names from.

## Things you can try:
- Pass the name as the first argument:
~~~
$ cqrsgen generate command create-user
~~~

- Any spelling works; it is normalized to dash-case:
~~~
$ cqrsgen generate command "Create User"
$ cqrsgen generate command createUser
~~~`,
	}

	targetExistsIssue = &Issue{
		id: TargetExistsId,
		mdMsg: `
# Target file already exists!

One of the files this generation would create is already present, so
nothing was written.

## Things you can try:
- Pick a different feature name
- Generate into a different directory:
~~~
$ cqrsgen generate command create-user --path src/users/cqrs
~~~

- Remove the existing file first if it is a leftover`,
	}

	moduleFileNotFoundIssue = &Issue{
		id: ModuleFileNotFoundId,
		mdMsg: `
# No module file found!

The handler was generated, but no *.module.ts file exists one level above
the target directory, so it was not registered anywhere.

## Things you can try:
- Register the handler manually in your feature module
- Generate into a directory whose parent holds the module file:
~~~
$ cqrsgen generate command create-user --path src/users/cqrs
~~~
  (this looks for src/users/*.module.ts)

- Skip registration on purpose:
~~~
$ cqrsgen generate command create-user --skip-import
~~~`,
	}

	providersArrayMissingIssue = &Issue{
		id: ProvidersArrayMissingId,
		mdMsg: `
# No providers array in the module file!

The module file was found, but it has no providers array to register the
handler in. The generated files are on disk; only the registration failed.

## Things you can try:
- Add an empty providers array to the module decorator:
~~~ts
@Module({
  imports: [CqrsModule],
  providers: [],
})
~~~

- Or add the handler manually:
~~~ts
providers: [CreateUserHandler],
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the cqrsgen configuration file.

## Configuration file locations (in order of precedence):
1. Path given via --config
2. cqrsgen.cue in the current directory
3. Linux: ~/.config/cqrsgen/config.cue
   macOS: ~/Library/Application Support/cqrsgen/config.cue
   Windows: %APPDATA%\cqrsgen\config.cue

## Things you can try:
- Create a project configuration with defaults:
~~~
$ cqrsgen init
~~~

- Check the CUE syntax; the error above names the offending field
- Remove the config file to fall back to defaults

## Example configuration:
~~~cue
source_root: "src"

generate: {
  flat: false
  skip_import: false
}

ui: {
  color_scheme: "auto"
}
~~~`,
	}

	hookFailedIssue = &Issue{
		id: HookFailedId,
		mdMsg: `
# Post-generation hook failed!

The files were generated, but the configured hooks.post_generate script
exited with an error.

## Things you can try:
- Run the hook manually to see its full output
- Check that the tools the hook calls are installed
- Fix or remove the hook in cqrsgen.cue:
~~~cue
hooks: {
  post_generate: "npx prettier --write ."
}
~~~`,
	}

	issues = map[Id]*Issue{
		featureNameMissingIssue.Id():    featureNameMissingIssue,
		targetExistsIssue.Id():          targetExistsIssue,
		moduleFileNotFoundIssue.Id():    moduleFileNotFoundIssue,
		providersArrayMissingIssue.Id(): providersArrayMissingIssue,
		configLoadFailedIssue.Id():      configLoadFailedIssue,
		hookFailedIssue.Id():            hookFailedIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
