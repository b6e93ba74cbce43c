// Package agents holds the declarative agent configuration handed to the hosted
// model runtime. Nothing here routes or reasons; the runtime does.
package agents

const DefaultModel = "gemini-2.0-flash"

const (
	CoordinatorAgentName  = "coordinator_agent"
	GreetingAgentName     = "greeting_agent"
	WeatherAgentName      = "weather_agent"
	GoogleSearchAgentName = "google_search_agent"
)

type Agent struct {
	Name        string  `json:"name"`
	Model       string  `json:"model"`
	Description string  `json:"description"`
	Instruction string  `json:"instruction"`
	Tools       []Tool  `json:"tools,omitempty"`
	SubAgents   []Agent `json:"sub_agents,omitempty"`
}

func Greeting(model string) Agent {
	return Agent{
		Name:        GreetingAgentName,
		Model:       modelOrDefault(model),
		Description: "Replies to greetings and explains that weather questions are supported.",
		Instruction: "You are a friendly greeting agent. When the user says hello, good morning, " +
			"good evening or similar, greet them naturally and tell them they can ask about " +
			"the weather in any city. Hand anything that is not a greeting back to " +
			CoordinatorAgentName + ".",
	}
}

func Weather(model string) Agent {
	return Agent{
		Name:        WeatherAgentName,
		Model:       modelOrDefault(model),
		Description: "Answers questions about the current weather in a city.",
		Instruction: "You receive a city name from the user and report the weather there. " +
			"Treat a bare city name as a question about its weather. Convert the city name " +
			"to lowercase English, pass it to the " + GetWeatherToolName + " tool and reply " +
			"with the result. Hand questions that are not about the weather to " +
			CoordinatorAgentName + ".",
		Tools: []Tool{GetWeatherTool()},
	}
}

func GoogleSearch(model string) Agent {
	return Agent{
		Name:        GoogleSearchAgentName,
		Model:       modelOrDefault(model),
		Description: "Wraps the Google search tool.",
		Instruction: "You are a Google search agent. Take the search keywords from the user, " +
			"run a Google search and return the results.",
		Tools: []Tool{GoogleSearchTool()},
	}
}

// New builds the coordinator tree: greeting and weather are sub-agents, search
// is attached as an agent tool.
func New(model string) Agent {
	return Agent{
		Name:        CoordinatorAgentName,
		Model:       modelOrDefault(model),
		Description: "Coordinates the greeting and weather agents and answers anything else with web search.",
		Instruction: "You are the coordinator agent. Delegate greetings to " + GreetingAgentName +
			" and weather questions to " + WeatherAgentName + ". Answer any other question " +
			"yourself using " + GoogleSearchAgentName + ".",
		Tools:     []Tool{AgentTool(GoogleSearch(model))},
		SubAgents: []Agent{Greeting(model), Weather(model)},
	}
}

// Find returns the agent named name in the tree rooted at root, searching
// depth first.
func Find(root Agent, name string) (Agent, bool) {
	if root.Name == name {
		return root, true
	}
	for _, sub := range root.SubAgents {
		if found, ok := Find(sub, name); ok {
			return found, true
		}
	}
	return Agent{}, false
}

// HasTool reports whether any agent in the tree declares a tool called name.
func HasTool(root Agent, name string) bool {
	for _, tool := range root.Tools {
		if tool.Name == name {
			return true
		}
	}
	for _, sub := range root.SubAgents {
		if HasTool(sub, name) {
			return true
		}
	}
	return false
}

func modelOrDefault(model string) string {
	if model == "" {
		return DefaultModel
	}
	return model
}
