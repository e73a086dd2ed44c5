package domain

const (
	DefaultReplyStatus      = 200
	DefaultReplyContentType = "text/plain; charset=utf-8"
	DefaultReplyBody        = "Hello World"
)

// Reply is the fixed response the responder writes for every request.
type Reply struct {
	Status      int
	ContentType string
	Body        string
}

func DefaultReply() Reply {
	return Reply{
		Status:      DefaultReplyStatus,
		ContentType: DefaultReplyContentType,
		Body:        DefaultReplyBody,
	}
}
