package diag

import (
	"github.com/MrShwhale/ftml/internal/source"
)

type Note struct {
	Span source.Span
	Msg  string
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Token    string // текст токена, вызвавшего диагностику
	Notes    []Note
}
