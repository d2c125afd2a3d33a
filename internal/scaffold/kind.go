// SPDX-License-Identifier: MPL-2.0

package scaffold

// Kind describes one generatable artifact family. The pipeline is the
// same for every kind; only the names, file suffixes and templates differ.
type Kind struct {
	// Name is the kind keyword used on the CLI, in file names
	// (create-user.command.ts) and in messages.
	Name string
	// ClassSuffix is appended to the PascalCase feature name to form the
	// exported class name (CreateUserCommand, ListUsersQuery).
	ClassSuffix string

	classTemplate   string
	handlerTemplate string
}

var (
	// Command generates a command class and its @CommandHandler stub.
	Command = Kind{
		Name:            "command",
		ClassSuffix:     "Command",
		classTemplate:   commandClassTemplate,
		handlerTemplate: commandHandlerTemplate,
	}

	// Query generates a query class and its @QueryHandler stub.
	Query = Kind{
		Name:            "query",
		ClassSuffix:     "Query",
		classTemplate:   queryClassTemplate,
		handlerTemplate: queryHandlerTemplate,
	}
)

// Kinds returns every supported artifact kind, in CLI declaration order.
func Kinds() []Kind {
	return []Kind{Command, Query}
}

const commandClassTemplate = `export class <%= classify(name) %>Command {
  constructor(public readonly payload: <%= classify(name) %>CommandPayload) {}
}

export interface <%= classify(name) %>CommandPayload {}
`

const commandHandlerTemplate = `import { CommandHandler, ICommandHandler } from '@nestjs/cqrs';
import { <%= classify(name) %>Command } from '<%= importPath %>';

@CommandHandler(<%= classify(name) %>Command)
export class <%= classify(name) %>Handler implements ICommandHandler<<%= classify(name) %>Command> {
  async execute(command: <%= classify(name) %>Command): Promise<void> {}
}
`

const queryClassTemplate = `export class <%= classify(name) %>Query {
  constructor(public readonly payload: <%= classify(name) %>QueryPayload) {}
}

export interface <%= classify(name) %>QueryPayload {}
`

const queryHandlerTemplate = `import { QueryHandler, IQueryHandler } from '@nestjs/cqrs';
import { <%= classify(name) %>Query } from '<%= importPath %>';

@QueryHandler(<%= classify(name) %>Query)
export class <%= classify(name) %>Handler implements IQueryHandler<<%= classify(name) %>Query> {
  async execute(query: <%= classify(name) %>Query): Promise<unknown> {
    return null;
  }
}
`
