package handler

import "github.com/gin-gonic/gin"

// ErrorResponse is the common error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}

// IncompleteProfileResponse names the fields the viewer must fill
// before matches are produced; the result set is empty by design.
type IncompleteProfileResponse struct {
	Error         string   `json:"error"`
	MissingFields []string `json:"missing_fields"`
}

func viewerID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}
