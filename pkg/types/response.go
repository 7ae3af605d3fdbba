package types

type SuccessEnvelope struct {
	Data any `json:"data"`
}

// ListEnvelope is the paginated collection shape: {"data": [...], "meta": {...}}.
type ListEnvelope struct {
	Data any      `json:"data"`
	Meta ListMeta `json:"meta"`
}

// ListMeta carries 1-indexed page information.
type ListMeta struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}
