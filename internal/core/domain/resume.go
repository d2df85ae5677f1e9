package domain

import "time"

// Resume is an uploaded document after extraction: the original file is not
// kept, only its digest and the markdown the extractor produced.
type Resume struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	Digest     string    `json:"digest"`
	Markdown   string    `json:"markdown"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// Session is one conversation. A session holds at most one resume; uploading
// another replaces it.
type Session struct {
	ID        string    `json:"id"`
	ResumeID  string    `json:"resume_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Message is a single turn persisted for a session.
type Message struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
