package console

import (
	"sort"

	"github.com/dshills/cmdstorm/internal/builder"
	"github.com/dshills/cmdstorm/internal/dispatcher"
)

// Builtins returns the console's built-in commands.
func Builtins() []dispatcher.Command[*Session] {
	help := builder.Literal[*Session]("help").
		Describe("List registered commands").
		Handler(func(s *Session, _ builder.Args) {
			metas := s.Metas()
			sort.Slice(metas, func(i, j int) bool { return metas[i].Usage < metas[j].Usage })
			for _, meta := range metas {
				if meta.Description != "" {
					s.Printf("%-30s %s", meta.Usage, meta.Description)
				} else {
					s.Print(meta.Usage)
				}
			}
		})

	quit := builder.Literal[*Session]("quit").
		Describe("Exit the console").
		Handler(func(s *Session, _ builder.Args) {
			s.Quit()
		})

	return []dispatcher.Command[*Session]{help, quit}
}
