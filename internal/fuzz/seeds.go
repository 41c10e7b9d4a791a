package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB, ограничение для тестового корпуса
	maxFuzzInput = 1 << 16
)

var builtinSeeds = []string{
	"",
	"[[css]]\ndiv.blockquote { color: blue; }\n[[/css]]\n**Test**\n[[module CSS]]\n.my-class {\n    display: block;\n}\n[[/module]]\n__string__\n",
	"**a //b** c//",
	"[[div]][[span]]x[[/div]][[/span]]",
	"[[span]][[div]]x[[/div]][[/span]]",
	"* a\n  * b\n    # c\n* d\n",
	"+ h1\n+++ h3 **x\n",
	"[[code type=\"go\"]]\n[[/code]] [[/code]]\n",
	"[[module]]\n[[module Rate]]\n[[module x]][[/module]]",
	"[[meta name=\"a\" content=\"b\"]][[meta property content]]",
	"a[[footnote]]b[[footnote]]c[[/footnote]][[/footnote]][[footnoteblock hide]]",
	"[http://a.b label] [javascript:x y] http://c.d/e?f=g",
	"@@**@@ @@ -- x -- {{m}} ^^p^^ ,,s,,",
	"[[",
	"[[div class=\"unterminated]]",
	"\\\n\t\r\n\r\n\n\n----\n",
	": a : b\n: //c : d// : e\n: f\n:  : \n",
	"[[ruby]]a[[rt]]b[[/ruby]][[/rt]] [[rt]]x",
	"[[*user a b]] [[user]] [[*checkbox]] [[*radio g]] [[*div]][[/div]]",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range builtinSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.ftml файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".ftml" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}
