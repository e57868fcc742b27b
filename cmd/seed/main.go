// cmd/seed/main.go — writes the demo dataset into the local store.
// Usage: go run ./cmd/seed [path]
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/Lagicart/SalesManager-pro-sub000/internal/localstore"
	"github.com/Lagicart/SalesManager-pro-sub000/internal/model"
	"github.com/Lagicart/SalesManager-pro-sub000/internal/store"
)

func main() {
	path := os.Getenv("DATA_PATH")
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	if path == "" {
		path = "salesmanager.db"
	}

	ls, err := localstore.Open(path)
	if err != nil {
		log.Fatalf("open local store: %v", err)
	}
	defer ls.Close()

	st := store.New(ls)
	if err := st.Load(context.Background()); err != nil {
		log.Fatalf("seed: %v", err)
	}

	admin := model.Attore{Ruolo: model.RuoloAdmin}
	fmt.Printf("dataset demo scritto in %s (%d operatori, %d agenti, %d metodi)\n",
		path, len(st.Operatori()), len(st.Agenti(admin)), len(st.Metodi()))
}
