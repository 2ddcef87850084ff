// Package source resolves resume and job description references into plain text.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/skill-gap/internal/headhunter"
	"github.com/spigell/skill-gap/internal/logger"
)

const (
	StdinRef = "-"

	s3Scheme = "s3://"
	hhPrefix = "hh:"
)

var (
	ErrEmptyRef          = errors.New("empty input reference")
	ErrUnsupportedFormat = errors.New("unsupported input format")
	ErrNotConfigured     = errors.New("input backend is not configured")
)

// VacancyFetcher is satisfied by *headhunter.Client.
type VacancyFetcher interface {
	GetVacancy(ctx context.Context, id string) (*headhunter.Vacancy, error)
}

type Options struct {
	Stdin      io.Reader
	HeadHunter VacancyFetcher
	S3         ObjectGetter
	Logger     *zap.Logger
}

type Loader struct {
	stdin  io.Reader
	hh     VacancyFetcher
	s3     ObjectGetter
	logger *zap.Logger
}

func New(opts Options) *Loader {
	l := &Loader{
		stdin:  opts.Stdin,
		hh:     opts.HeadHunter,
		s3:     opts.S3,
		logger: opts.Logger,
	}

	if l.stdin == nil {
		l.stdin = os.Stdin
	}
	if l.logger == nil {
		l.logger = zap.NewNop()
	}

	return l
}

// Load returns the text behind ref. Supported references:
//
//	-                      standard input
//	s3://bucket/key        object storage
//	hh:<id>, hh.ru URL     hh.ru vacancy
//	path/to/file           .pdf, .docx, .html, anything else as text
func (l *Loader) Load(ctx context.Context, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", ErrEmptyRef
	}

	log := logger.WithFields(l.logger, logger.StringFields(logger.StringField{Key: logger.FieldSource, Value: ref})...)

	var (
		text string
		err  error
	)

	switch {
	case ref == StdinRef:
		log.Debug("reading standard input")
		text, err = l.loadStdin()
	case strings.HasPrefix(ref, s3Scheme):
		log.Debug("downloading object")
		text, err = l.loadS3(ctx, ref)
	case isVacancyRef(ref):
		log.Debug("fetching vacancy")
		text, err = l.loadVacancy(ctx, ref)
	default:
		log.Debug("reading file")
		text, err = loadFile(ref)
	}

	if err != nil {
		return "", fmt.Errorf("load %s: %w", ref, err)
	}

	log.Debug("input loaded", zap.Int("length", len(text)))
	return text, nil
}

func (l *Loader) loadStdin() (string, error) {
	data, err := io.ReadAll(l.stdin)
	if err != nil {
		return "", err
	}
	return strings.ToValidUTF8(string(data), ""), nil
}

func (l *Loader) loadVacancy(ctx context.Context, ref string) (string, error) {
	if l.hh == nil {
		return "", fmt.Errorf("%w: headhunter", ErrNotConfigured)
	}

	id, err := headhunter.ParseVacancyRef(ref)
	if err != nil {
		return "", err
	}

	vacancy, err := l.hh.GetVacancy(ctx, id)
	if err != nil {
		return "", err
	}

	return vacancy.Text()
}

func isVacancyRef(ref string) bool {
	if strings.HasPrefix(ref, hhPrefix) {
		return true
	}
	return strings.HasPrefix(ref, "http") && strings.Contains(ref, "hh.") && strings.Contains(ref, "/vacancy/")
}

func loadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	return Extract(filepath.Ext(path), data)
}

// Extract converts document bytes into text based on the file extension.
func Extract(ext string, data []byte) (string, error) {
	switch strings.ToLower(ext) {
	case ".pdf":
		return extractPDF(data)
	case ".docx":
		return extractDocx(data)
	case ".html", ".htm":
		return headhunter.HTMLToText(string(data))
	case ".doc", ".rtf", ".odt":
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	default:
		return strings.ToValidUTF8(string(data), ""), nil
	}
}
