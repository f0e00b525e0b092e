package api

import "net/http"

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Success    bool   `json:"success"`
	Response   string `json:"response"`
	ToolUsed   string `json:"tool_used,omitempty"`
	ToolResult any    `json:"tool_result,omitempty"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	user, err := s.ensureUser(w, r)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	var req chatRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	reply, err := s.deps.ProcessMessage(r.Context(), user.ID, req.Message)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, chatResponse{
		Success:    true,
		Response:   reply.Response,
		ToolUsed:   reply.ToolUsed,
		ToolResult: reply.ToolResult,
	})
}
