package data

// JobRequest is the job-run envelope sent by external schedulers.
type JobRequest struct {
	JobID string      `json:"id"`
	Data  RequestData `json:"data"`
}

type JobResponse struct {
	JobRunID   string      `json:"jobRunID"`
	Data       interface{} `json:"data"`
	Result     interface{} `json:"result"`
	StatusCode int         `json:"statusCode"`
	Error      string      `json:"error,omitempty"`
}

// RequestData optionally names the contract and function a job expects to
// run. Empty fields match anything.
type RequestData struct {
	ScAddress string `json:"sc_address"`
	Function  string `json:"function"`
}

type StatusResponse struct {
	Treasury     string   `json:"treasury"`
	Participants []string `json:"participants"`
}

type ContributionResponse struct {
	Address      string `json:"address"`
	Contribution string `json:"contribution"`
}
