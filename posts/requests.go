package posts

import "strings"

type CreatePostRequest struct {
	Content  string   `json:"content" validate:"required"`
	Images   []string `json:"images"`
	Location string   `json:"location"`
	Tags     []string `json:"tags"`
	GroupID  string   `json:"groupid"`
}

type UpdatePostRequest struct {
	Content  *string   `json:"content" validate:"omitempty,min=1"`
	Images   *[]string `json:"images"`
	Location *string   `json:"location"`
	Tags     *[]string `json:"tags"`
}

type CommentRequest struct {
	Content string `json:"content" validate:"required"`
}

func (req *CreatePostRequest) trim() {
	req.Content = strings.TrimSpace(req.Content)
	req.Location = strings.TrimSpace(req.Location)
}

func (req *CommentRequest) trim() {
	req.Content = strings.TrimSpace(req.Content)
}
