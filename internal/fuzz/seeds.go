package fuzztests

import (
	"testing"
)

const maxFuzzInput = 1 << 16 // 64 KiB

// kotlinSeeds печатаются форматтером без изменений.
var kotlinSeeds = []string{
	"",
	"package a.b\n\nimport x.Y\nimport z.*\nimport q.R as S\n\nval v = 1\n",
	"fun f(a: Int, b: String = \"s\"): Int = a + 1\n",
	"fun <T> List<T>.second(): T? {\n    val n = size\n    return get(1)\n}\n",
	"data class A(val x: Int, var y: String?) : B(x), C {\n    fun g() {\n        println(x)\n    }\n}\n",
	"enum class E {\n    A,\n    B;\n\n    fun f() = 1\n}\n",
	"class K {\n    companion object {\n        const val N = 1\n    }\n}\n\nobject O\n",
	"val l = list.map { x -> x + 1 }\n",
	"fun f(x: Any) = when (x) {\n    is String -> 1\n    in 1..2 -> 2\n    else -> 3\n}\n",
	"fun f() {\n    try {\n        g()\n    } catch (e: Exception) {\n        throw e\n    } finally {\n        h()\n    }\n}\n",
	"// head\npackage p\n\n/* doc */\nfun f() {\n    g() // trailing\n    // end\n}\n// tail\n",
}

func addSeeds(f *testing.F) {
	for _, s := range kotlinSeeds {
		f.Add([]byte(s))
	}
}

// clampInput копирует вход, обрезая его до maxFuzzInput.
func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		input = input[:maxFuzzInput]
	}
	return append([]byte(nil), input...)
}

// truncateForLog truncates input for logging purposes
func truncateForLog(input []byte, maxLen int) []byte {
	if len(input) <= maxLen {
		return input
	}
	return append(append([]byte(nil), input[:maxLen]...), "..."...)
}
