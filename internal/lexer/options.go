package lexer

import (
	"github.com/MrShwhale/ftml/internal/diag"
	"github.com/MrShwhale/ftml/internal/source"
)

type Options struct {
	Reporter diag.Reporter // может быть nil, тогда ошибки игнорируем (но продолжаем лексить)
}

func (lx *Lexer) report(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter == nil {
		return
	}
	diag.ReportWarning(lx.opts.Reporter, code, sp, msg).
		WithToken(lx.text(sp)).
		Emit()
}
