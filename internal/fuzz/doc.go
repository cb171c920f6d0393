// Package fuzztests holds fuzz harnesses for the Kotlin front end and the
// writer: lexer, parser and the format round trip.
//
// Назначение: гонять произвольные байты через FileSet, лексер, парсер и
// форматтер, ловить паники, зависания и нестабильный вывод.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
