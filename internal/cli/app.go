package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dmitrijs2005/blobkeeper/internal/codec"
	"github.com/dmitrijs2005/blobkeeper/internal/common"
	"github.com/dmitrijs2005/blobkeeper/internal/config"
	"github.com/dmitrijs2005/blobkeeper/internal/flagx"
	"github.com/dmitrijs2005/blobkeeper/internal/logging"
	"github.com/dmitrijs2005/blobkeeper/internal/records"
	"github.com/dmitrijs2005/blobkeeper/internal/repository"
	"github.com/dmitrijs2005/blobkeeper/internal/slot"
)

type App struct {
	keyField string
	repo     *repository.Repository[records.Document, string]
	logger   logging.Logger
}

// NewApp builds the records repository for cfg on top of provider. When the
// sealed codec is selected without a passphrase, the passphrase is read from
// the terminal.
func NewApp(cfg *config.Config, provider slot.Provider, logger logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.NewNop()
	}

	passphrase := []byte(cfg.Passphrase)
	if strings.EqualFold(cfg.Codec, codec.NameSealed) && len(passphrase) == 0 {
		pw, err := GetPassword(os.Stderr)
		if err != nil {
			return nil, fmt.Errorf("read passphrase: %w", err)
		}
		passphrase = pw
		defer common.WipeByteArray(pw)
	}

	c, err := codec.New[records.Document](cfg.Codec, passphrase, []byte(cfg.Salt))
	if err != nil {
		return nil, err
	}

	repo := repository.New(cfg.StoreKey, records.KeyField(cfg.KeyField), provider,
		repository.WithCodec[records.Document, string](c),
		repository.WithLogger[records.Document, string](logger),
	)

	return &App{keyField: cfg.KeyField, repo: repo, logger: logger}, nil
}

// Run executes the command found in args once, or starts the REPL on in when
// args carry no command.
func (a *App) Run(ctx context.Context, args []string, in io.Reader) error {
	words := flagx.Positional(args, config.KnownFlags)
	if len(words) == 0 {
		printlnFn(fmt.Sprintf("blobkeeper: slot %q (type 'help' for commands)", a.repo.StoreKey()))
		runREPL(ctx, a, newScanner(in))
		return nil
	}

	_, err := dispatch(ctx, a, words[0], strings.Join(words[1:], " "))
	if errors.Is(err, errUnknownCommand) {
		printlnFn(helpText)
	}
	return err
}
