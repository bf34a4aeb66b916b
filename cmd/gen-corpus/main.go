// Command gen-corpus writes a sample markup corpus for `arbor corpus` and `arbor serve --dir`.
package main

import (
	"context"
	"fmt"
	"os"

	loamAdapter "github.com/aretw0/arbor/pkg/adapters/loam"
	"github.com/aretw0/loam"
)

var samples = []struct {
	id     string
	meta   loamAdapter.DocMetadata
	markup string
}{
	{
		id:     "hello",
		meta:   loamAdapter.DocMetadata{Title: "Hello World"},
		markup: `<p class="greeting">Hello <b>World</b></p>`,
	},
	{
		id:     "void",
		meta:   loamAdapter.DocMetadata{Title: "Void Elements", Tags: []string{"edge"}},
		markup: `<p>line one<br>line two<hr><img src="a.png" alt=''></p>`,
	},
	{
		id:     "malformed",
		meta:   loamAdapter.DocMetadata{Title: "Tolerated Input", Tags: []string{"edge"}},
		markup: `</stray><div><span>unclosed <i>tags</div> and trailing text`,
	},
	{
		id:     "guide/lists",
		meta:   loamAdapter.DocMetadata{Title: "Nested Lists"},
		markup: `<ul id="outer"><li>one<ul><li>one.a</li></ul></li><li>two</li></ul>`,
	},
}

func main() {
	targetDir := "examples/corpus"
	if len(os.Args) > 1 {
		targetDir = os.Args[1]
	}

	if err := os.MkdirAll(targetDir, 0755); err != nil {
		panic(err)
	}

	fmt.Printf("Generating sample corpus in: %s\n", targetDir)

	// No versioning: plain file generation.
	repo, err := loam.Init(targetDir, loam.WithVersioning(false))
	check(err)

	typedRepo := loam.NewTypedRepository[loamAdapter.DocMetadata](repo)
	ctx := context.Background()

	for _, s := range samples {
		err := typedRepo.Save(ctx, &loam.DocumentModel[loamAdapter.DocMetadata]{
			ID:      s.id,
			Content: s.markup,
			Data:    s.meta,
		})
		check(err)
	}

	fmt.Println("Done. Try: arbor corpus --dir", targetDir)
}

func check(err error) {
	if err != nil {
		panic(err)
	}
}
