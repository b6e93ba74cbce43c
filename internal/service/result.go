package service

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// LookupResult is either a Success or a Failure. The unexported marker method
// keeps the set of variants closed.
type LookupResult interface {
	ToolResponse() ToolResponse
	isLookupResult()
}

// Success carries the report sentence plus the conditions it was built from.
// Only Report reaches the tool response.
type Success struct {
	Report      string
	Temperature float64
	WeatherCode int
}

func (Success) isLookupResult() {}

func (r Success) ToolResponse() ToolResponse {
	return ToolResponse{Status: StatusSuccess, Report: r.Report}
}

type Failure struct {
	Err error
}

func (Failure) isLookupResult() {}

func (r Failure) Message() string {
	if r.Err == nil {
		return "unknown error"
	}
	return r.Err.Error()
}

func (r Failure) ToolResponse() ToolResponse {
	return ToolResponse{Status: StatusError, ErrorMessage: r.Message()}
}

// ToolResponse is the wire shape the agent runtime dispatches on.
type ToolResponse struct {
	Status       string `json:"status"`
	Report       string `json:"report,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}
