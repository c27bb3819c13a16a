package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/blobkeeper/internal/records"
)

func (a *App) List(ctx context.Context) error {
	docs, err := a.repo.GetAll(ctx)
	if err != nil {
		return err
	}
	printDocs(docs)
	return nil
}

func (a *App) Get(ctx context.Context, key string) error {
	doc, err := a.repo.GetByKey(ctx, key)
	if err != nil {
		return err
	}
	printlnFn(doc.String())
	return nil
}

// Find prints documents whose field contains text.
func (a *App) Find(ctx context.Context, field, text string) error {
	docs, err := a.repo.FindMatching(ctx, records.Contains(field, text))
	if err != nil {
		return err
	}
	printDocs(docs)
	return nil
}

// Put stores a document, replacing the whole document with the same key.
// Documents without a key get a generated one.
func (a *App) Put(ctx context.Context, text string) error {
	doc, err := records.Parse(text)
	if err != nil {
		return err
	}
	key := records.EnsureKey(doc, a.keyField)

	if err := a.repo.AddOrUpdate(ctx, doc); err != nil {
		return err
	}
	a.logger.Info(ctx, "document saved", "key", key)
	printlnFn(fmt.Sprintf("saved %s", key))
	return nil
}

func (a *App) Remove(ctx context.Context, key string) error {
	doc, err := a.repo.Remove(ctx, key)
	if err != nil {
		return err
	}
	a.logger.Info(ctx, "document removed", "key", key)
	printlnFn(fmt.Sprintf("removed %s", doc.String()))
	return nil
}

func printDocs(docs []records.Document) {
	for _, d := range docs {
		printlnFn(d.String())
	}
	noun := "documents"
	if len(docs) == 1 {
		noun = "document"
	}
	printlnFn(fmt.Sprintf("(%d %s)", len(docs), noun))
}

// splitArgs separates the first word of s from the remainder.
func splitArgs(s string) (string, string) {
	first, rest, _ := strings.Cut(strings.TrimSpace(s), " ")
	return first, strings.TrimSpace(rest)
}
