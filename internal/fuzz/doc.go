// Package fuzztests houses Go fuzz harnesses for the render pipeline
// (source -> lexer -> parser -> resolver -> generators). They guard against
// panics, hangs and broken invariants on arbitrary markup.
//
// Назначение: запускать fuzz-обработчики, которые прогоняют байты через
// конвейер и проверяют инварианты из internal/testkit.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
