package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"synmap/internal/modules/export/domain"
	"synmap/internal/modules/export/dto"
	exportout "synmap/internal/modules/export/port/out"
	apperrors "synmap/internal/platform/errors"
	"synmap/internal/platform/slug"
)

const builtinExporterName = "plain-text"

// ExportService writes explanation documents to the exports directory,
// either through the built-in txt rendering or an external exporter
// selected by format.
type ExportService struct {
	store      exportout.ManifestStore
	host       exportout.Host
	exportsDir string
}

func NewExportService(store exportout.ManifestStore, host exportout.Host, exportsDir string) *ExportService {
	return &ExportService{store: store, host: host, exportsDir: exportsDir}
}

func (s *ExportService) Export(ctx context.Context, input dto.ExportInput) (dto.ExportOutput, error) {
	doc := domain.Document{Title: input.Title, Markdown: input.Markdown}
	if err := doc.Validate(); err != nil {
		return dto.ExportOutput{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	format := input.Format
	if format == "" {
		format = domain.FormatPlainText
	}

	var rendering domain.Rendering
	exporter := builtinExporterName
	if format == domain.FormatPlainText {
		rendering = domain.RenderPlainText(doc)
	} else {
		manifest, err := s.manifestForFormat(ctx, format)
		if err != nil {
			return dto.ExportOutput{}, err
		}
		rendering, err = s.host.Export(ctx, manifest, doc, format)
		if err != nil {
			return dto.ExportOutput{}, fmt.Errorf("run exporter %s: %w", manifest.Name, err)
		}
		if err := rendering.Validate(); err != nil {
			return dto.ExportOutput{}, fmt.Errorf("exporter %s returned invalid rendering: %w", manifest.Name, err)
		}
		exporter = manifest.Name
	}

	path, err := s.write(doc.Title, rendering)
	if err != nil {
		return dto.ExportOutput{}, err
	}
	return dto.ExportOutput{Path: path, Format: format, Exporter: exporter}, nil
}

func (s *ExportService) List(ctx context.Context) ([]dto.ExporterOutput, error) {
	manifests, err := s.loadValidated(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ExporterOutput, 0, len(manifests)+1)
	out = append(out, dto.ExporterOutput{
		Name:    builtinExporterName,
		Version: "builtin",
		Enabled: true,
		Formats: []string{domain.FormatPlainText},
	})
	for _, m := range manifests {
		out = append(out, dto.ExporterOutput{
			Name:    m.Name,
			Version: m.Version,
			Enabled: m.Enabled,
			Binary:  m.Binary,
			Formats: m.Formats,
		})
	}
	return out, nil
}

func (s *ExportService) Doctor(ctx context.Context) ([]dto.DoctorEntryOutput, error) {
	manifests, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	results := make([]dto.DoctorEntryOutput, 0, len(manifests))
	for _, m := range manifests {
		result := dto.DoctorEntryOutput{Name: m.Name}
		if err := m.Validate(); err != nil {
			result.Error = err.Error()
			results = append(results, result)
			continue
		}
		binaryOK := fileExists(m.Binary)
		result.BinaryReachable = binaryOK
		checksumOK := false
		if binaryOK {
			checksumOK = checksumMatches(m.Binary, m.SHA256) == nil
		}
		result.ChecksumValid = checksumOK
		if binaryOK && checksumOK && m.Enabled && s.host != nil {
			if err := s.host.CheckLifecycle(ctx, m); err != nil {
				result.Error = err.Error()
			} else {
				result.LifecycleOK = true
			}
		}
		if !binaryOK {
			result.Error = fmt.Sprintf("binary does not exist: %s", m.Binary)
		}
		if binaryOK && !checksumOK {
			result.Error = "checksum mismatch"
		}
		results = append(results, result)
	}
	return results, nil
}

func (s *ExportService) manifestForFormat(ctx context.Context, format string) (domain.Manifest, error) {
	manifests, err := s.loadValidated(ctx)
	if err != nil {
		return domain.Manifest{}, err
	}
	for _, m := range manifests {
		if !m.HasFormat(format) {
			continue
		}
		if !m.Enabled {
			return domain.Manifest{}, fmt.Errorf("%w: %s", domain.ErrExporterDisabled, m.Name)
		}
		if err := checksumMatches(m.Binary, m.SHA256); err != nil {
			return domain.Manifest{}, err
		}
		if s.host != nil {
			if err := s.host.CheckLifecycle(ctx, m); err != nil {
				if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
					return domain.Manifest{}, fmt.Errorf("%w: %s", domain.ErrExporterTimeout, m.Name)
				}
				return domain.Manifest{}, err
			}
		}
		return m, nil
	}
	return domain.Manifest{}, fmt.Errorf("%w: %s", domain.ErrFormatUnsupported, format)
}

func (s *ExportService) loadValidated(ctx context.Context) ([]domain.Manifest, error) {
	manifests, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	seenNames := map[string]struct{}{}
	for _, manifest := range manifests {
		if err := manifest.Validate(); err != nil {
			return nil, err
		}
		if _, ok := seenNames[manifest.Name]; ok {
			return nil, fmt.Errorf("duplicate exporter name: %s", manifest.Name)
		}
		seenNames[manifest.Name] = struct{}{}
	}
	return manifests, nil
}

func (s *ExportService) write(title string, rendering domain.Rendering) (string, error) {
	if err := os.MkdirAll(s.exportsDir, 0o755); err != nil {
		return "", fmt.Errorf("create exports dir: %w", err)
	}
	path := filepath.Join(s.exportsDir, slug.Make(title)+"."+rendering.Extension)
	if err := os.WriteFile(path, []byte(rendering.Content), 0o644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	return path, nil
}

func checksumMatches(path string, expected string) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read exporter binary: %w", err)
	}
	hash := sha256.Sum256(payload)
	actual := hex.EncodeToString(hash[:])
	if actual != expected {
		return fmt.Errorf("%w: %s", domain.ErrChecksumMismatch, filepath.Base(path))
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
