package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"shopadmin/internal/repository"
)

var ErrNoPath = errors.New("jsonfile: empty path")

// Repo writes export results as indented JSON. A reader of Path sees either
// the previous file or the complete new one.
type Repo struct {
	Path string
	Log  *slog.Logger
}

func New(path string, log *slog.Logger) *Repo {
	if log == nil {
		log = slog.Default()
	}
	return &Repo{Path: path, Log: log}
}

func (r *Repo) SaveShops(ctx context.Context, res repository.ShopsResult) error {
	if err := r.write(ctx, res); err != nil {
		return err
	}
	r.Log.Info("shops exported", "path", r.Path, "count", res.Count)
	return nil
}

func (r *Repo) SaveProducts(ctx context.Context, res repository.ProductsResult) error {
	if err := r.write(ctx, res); err != nil {
		return err
	}
	r.Log.Info("products exported", "path", r.Path, "count", res.Count, "shop_id", res.ShopID)
	return nil
}

func (r *Repo) write(ctx context.Context, v any) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	if r.Path == "" {
		return ErrNoPath
	}

	dir := filepath.Dir(r.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("jsonfile: %w", err)
	}

	f, err := os.CreateTemp(dir, filepath.Base(r.Path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("jsonfile: %w", err)
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err = enc.Encode(v); err != nil {
		return fmt.Errorf("jsonfile: encode: %w", err)
	}
	if err = f.Sync(); err != nil {
		return fmt.Errorf("jsonfile: %w", err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("jsonfile: %w", err)
	}
	if err = os.Chmod(f.Name(), 0o644); err != nil {
		return fmt.Errorf("jsonfile: %w", err)
	}
	if err = os.Rename(f.Name(), r.Path); err != nil {
		return fmt.Errorf("jsonfile: %w", err)
	}
	return nil
}
