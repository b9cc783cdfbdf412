package services

// Kind classifies a service failure so the transport layer can map it to a
// status code without inspecting message strings.
type Kind int

const (
	KindInvalid Kind = iota
	KindUnauthorized
	KindForbidden
	KindNotFound
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func errInvalid(msg string) error      { return &Error{Kind: KindInvalid, Message: msg} }
func errUnauthorized(msg string) error { return &Error{Kind: KindUnauthorized, Message: msg} }
func errForbidden(msg string) error    { return &Error{Kind: KindForbidden, Message: msg} }
func errNotFound(msg string) error     { return &Error{Kind: KindNotFound, Message: msg} }
