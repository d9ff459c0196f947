package handlers

type Response struct {
	Error string `json:"error"`
}

var (
	// Predefined errors
	OKResponse       = Response{}
	NopeResponse     = Response{"nope"}
	NoFilesResponse  = Response{"No files selected."}
	DBError1Response = Response{"DB Error 1"}
	DBError2Response = Response{"DB Error 2"}
)
