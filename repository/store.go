package repository

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"sort"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
	"github.com/viant/splmodel/code"
	"golang.org/x/sync/errgroup"
)

const (
	// SourceCodePrefix is the prefix toolkit models declare for the source code namespace
	SourceCodePrefix = "srcCode"
	// CommonPrefix is the prefix of the shared SPL schema types
	CommonPrefix = "common"
	// SchemaInstancePrefix is the prefix of the XML schema instance namespace
	SchemaInstancePrefix = "xsi"
)

// Store reads and writes toolkit source model files
type Store struct {
	fs             afs.Service
	fileName       string
	logger         *log.Logger
	encoderOptions []code.EncoderOption
	schemaLocation string
}

// New creates a new Store
func New(options ...Option) *Store {
	ret := &Store{fs: afs.New(), fileName: ModelFileName}
	for _, option := range options {
		option(ret)
	}
	return ret
}

// FileName returns the source model file name
func (s *Store) FileName() string {
	return s.fileName
}

// ModelURL returns the source model location of a toolkit directory
func (s *Store) ModelURL(dirURL string) string {
	return url.Join(dirURL, s.fileName)
}

// NewDocument wraps model with the prefixes toolkit models are written with
func (s *Store) NewDocument(model *code.SourceModel) *code.Document {
	return &code.Document{
		SourceModel: model,
		Namespaces: map[string]string{
			SourceCodePrefix:     code.Namespace,
			CommonPrefix:         code.CommonNamespace,
			SchemaInstancePrefix: code.SchemaInstanceNamespace,
		},
		SchemaLocation: s.schemaLocation,
	}
}

// Exists reports whether the toolkit directory holds a source model
func (s *Store) Exists(ctx context.Context, dirURL string) (bool, error) {
	return s.fs.Exists(ctx, s.ModelURL(dirURL))
}

// Load loads the source model of a toolkit directory
func (s *Store) Load(ctx context.Context, dirURL string) (*code.Document, error) {
	return s.LoadFile(ctx, s.ModelURL(dirURL))
}

// LoadFile loads a source model file
func (s *Store) LoadFile(ctx context.Context, URL string) (*code.Document, error) {
	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to download %s: %w", URL, err)
	}
	doc, err := code.UnmarshalDocument(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", URL, err)
	}
	s.logf("loaded %s: %d source files", URL, len(doc.SourceModel.SourceFile))
	return doc, nil
}

// LoadAll loads the source models of several toolkit directories concurrently, results follow dirURLs order
func (s *Store) LoadAll(ctx context.Context, dirURLs ...string) ([]*code.Document, error) {
	ret := make([]*code.Document, len(dirURLs))
	group, gctx := errgroup.WithContext(ctx)
	for i, dirURL := range dirURLs {
		i, dirURL := i, dirURL
		group.Go(func() error {
			doc, err := s.Load(gctx, dirURL)
			if err != nil {
				return err
			}
			ret[i] = doc
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return ret, nil
}

// Scan walks root and returns the directories holding a source model file
func (s *Store) Scan(ctx context.Context, root string) ([]string, error) {
	dirs := map[string]bool{}
	visitor := func(ctx context.Context, baseURL, parent string, info os.FileInfo, reader io.Reader) (bool, error) {
		if info.IsDir() {
			return true, nil
		}
		if info.Name() == s.fileName {
			dirs[url.Join(baseURL, parent)] = true
		}
		return true, nil
	}
	if err := s.fs.Walk(ctx, root, visitor); err != nil {
		return nil, err
	}
	var ret []string
	for dir := range dirs {
		ret = append(ret, dir)
	}
	sort.Strings(ret)
	return ret, nil
}

// Save writes model to the toolkit directory, an unchanged model file is left untouched
func (s *Store) Save(ctx context.Context, dirURL string, model *code.SourceModel) (bool, error) {
	return s.SaveDocument(ctx, dirURL, s.NewDocument(model))
}

// SaveDocument writes doc to the toolkit directory, it reports whether the file changed
func (s *Store) SaveDocument(ctx context.Context, dirURL string, doc *code.Document) (bool, error) {
	data, err := code.MarshalDocument(doc, s.encoderOptions...)
	if err != nil {
		return false, err
	}
	URL := s.ModelURL(dirURL)
	unchanged, err := s.isUnchanged(ctx, URL, data)
	if err != nil {
		return false, err
	}
	if unchanged {
		s.logf("%s is up to date", URL)
		return false, nil
	}
	if err = s.fs.Upload(ctx, URL, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return false, fmt.Errorf("failed to upload %s: %w", URL, err)
	}
	s.logf("saved %s", URL)
	return true, nil
}

func (s *Store) isUnchanged(ctx context.Context, URL string, data []byte) (bool, error) {
	exists, err := s.fs.Exists(ctx, URL)
	if err != nil || !exists {
		return false, err
	}
	existing, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return false, err
	}
	current, err := code.Hash(existing)
	if err != nil {
		return false, err
	}
	next, err := code.Hash(data)
	if err != nil {
		return false, err
	}
	return current == next, nil
}

// Delete removes the source model of a toolkit directory
func (s *Store) Delete(ctx context.Context, dirURL string) error {
	URL := s.ModelURL(dirURL)
	exists, err := s.fs.Exists(ctx, URL)
	if err != nil || !exists {
		return err
	}
	return s.fs.Delete(ctx, URL)
}

func (s *Store) logf(format string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}
