package out

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"time"

	exporterrpc "synmap/internal/modules/export/adapter/out/rpc"
	"synmap/internal/modules/export/domain"
	exportout "synmap/internal/modules/export/port/out"

	hclog "github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"
)

const (
	defaultStartTimeout = 3 * time.Second
	defaultCallTimeout  = 10 * time.Second
)

type GRPCHost struct{}

func NewGRPCHost() exportout.Host {
	return &GRPCHost{}
}

func (h *GRPCHost) CheckLifecycle(ctx context.Context, manifest domain.Manifest) error {
	client, closeFn, err := h.connect(manifest, defaultStartTimeout)
	if err != nil {
		return err
	}
	defer closeFn()

	callCtx, cancel := h.callContext(ctx, defaultCallTimeout)
	defer cancel()
	if _, err := client.Describe(callCtx); err != nil {
		return fmt.Errorf("describe exporter: %w", err)
	}
	return nil
}

func (h *GRPCHost) Describe(ctx context.Context, manifest domain.Manifest) (domain.Descriptor, error) {
	client, closeFn, err := h.connect(manifest, defaultStartTimeout)
	if err != nil {
		return domain.Descriptor{}, err
	}
	defer closeFn()

	callCtx, cancel := h.callContext(ctx, defaultCallTimeout)
	defer cancel()

	desc, err := client.Describe(callCtx)
	if err != nil {
		return domain.Descriptor{}, fmt.Errorf("describe exporter: %w", err)
	}
	return domain.Descriptor{Name: desc.Name, Version: desc.Version, Formats: desc.Formats}, nil
}

func (h *GRPCHost) Export(ctx context.Context, manifest domain.Manifest, doc domain.Document, format string) (domain.Rendering, error) {
	client, closeFn, err := h.connect(manifest, defaultStartTimeout)
	if err != nil {
		return domain.Rendering{}, err
	}
	defer closeFn()

	callCtx, cancel := h.callContext(ctx, defaultCallTimeout)
	defer cancel()
	response, err := client.Export(callCtx, &exporterrpc.ExportRequest{
		Title:    doc.Title,
		Markdown: doc.Markdown,
		Format:   format,
	})
	if err != nil {
		if callCtx.Err() == context.DeadlineExceeded {
			return domain.Rendering{}, fmt.Errorf("%w: %s", domain.ErrExporterTimeout, manifest.Name)
		}
		return domain.Rendering{}, fmt.Errorf("export document: %w", err)
	}
	return domain.Rendering{Content: response.Content, Extension: response.Extension}, nil
}

func (h *GRPCHost) connect(manifest domain.Manifest, startTimeout time.Duration) (exporterrpc.SynmapExporterClient, func(), error) {
	client := plugin.NewClient(&plugin.ClientConfig{
		HandshakeConfig:  exporterrpc.HandshakeConfig,
		AllowedProtocols: []plugin.Protocol{plugin.ProtocolGRPC},
		Plugins:          exporterrpc.PluginMap(nil),
		Cmd:              exec.Command(manifest.Binary),
		Managed:          true,
		StartTimeout:     startTimeout,
		Logger:           hclog.New(&hclog.LoggerOptions{Output: io.Discard, Level: hclog.NoLevel}),
	})
	closeFn := func() { client.Kill() }

	rpcClient, err := client.Client()
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("start exporter client: %w", err)
	}
	raw, err := rpcClient.Dispense(exporterrpc.PluginMapKey)
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("dispense exporter: %w", err)
	}
	typed, ok := raw.(exporterrpc.SynmapExporterClient)
	if !ok {
		closeFn()
		return nil, nil, fmt.Errorf("exporter rpc client type mismatch")
	}
	return typed, closeFn, nil
}

func (h *GRPCHost) callContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := parent.Deadline(); ok {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, timeout)
}
