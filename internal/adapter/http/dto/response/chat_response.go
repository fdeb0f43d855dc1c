package response

type ChatResponse struct {
	Answer string `json:"answer"`
}
