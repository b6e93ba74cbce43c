package agents

import (
	"github.com/invopop/jsonschema"
)

const (
	GetWeatherToolName   = "get_weather"
	GoogleSearchToolName = "google_search"
)

// Tool declares a callable the hosted runtime may invoke. Builtin tools are
// provided by the runtime itself and carry no parameters.
type Tool struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Builtin     bool               `json:"builtin,omitempty"`
	Agent       string             `json:"agent,omitempty"`
	Parameters  *jsonschema.Schema `json:"parameters,omitempty"`
}

// GetWeatherInput is the argument object of the get_weather tool.
type GetWeatherInput struct {
	City string `json:"city" jsonschema:"title=city,description=City name in lowercase English such as tokyo" validate:"required"`
}

func GetWeatherTool() Tool {
	return Tool{
		Name: GetWeatherToolName,
		Description: "Returns the current weather for a city. The result has a status of " +
			"\"success\" with a report, or \"error\" with an error_message.",
		Parameters: reflectSchema(&GetWeatherInput{}),
	}
}

func GoogleSearchTool() Tool {
	return Tool{
		Name:        GoogleSearchToolName,
		Description: "Searches the web with Google.",
		Builtin:     true,
	}
}

// AgentTool exposes agent as a tool of its parent rather than as a sub-agent.
// The runtime only allows agents holding builtin tools to be attached this way.
func AgentTool(agent Agent) Tool {
	return Tool{
		Name:        agent.Name,
		Description: agent.Description,
		Agent:       agent.Name,
	}
}

func reflectSchema(v interface{}) *jsonschema.Schema {
	r := &jsonschema.Reflector{
		DoNotReference: true,
		Anonymous:      true,
	}
	schema := r.Reflect(v)
	schema.Version = ""
	return schema
}
