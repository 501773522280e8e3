package http

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
)

// processChatReq reads the chat body. A missing, unparseable or empty JSON object is errNoData;
// a message that is not a string is errInvalidMessage.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq

	raw, err := c.GetRawData()
	if err != nil {
		return req, errNoData
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || len(fields) == 0 {
		return req, errNoData
	}

	if msg, ok := fields["message"]; ok {
		if err := json.Unmarshal(msg, &req.Message); err != nil {
			return req, errInvalidMessage
		}
	}
	return req, nil
}
