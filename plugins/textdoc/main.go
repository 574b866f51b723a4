package main

import (
	"context"
	"fmt"
	"strings"

	exporterrpc "synmap/internal/modules/export/adapter/out/rpc"

	"github.com/hashicorp/go-plugin"
)

// textdoc renders explanations as a simple structured text document. It
// doubles as the reference exporter for the rpc contract.
type server struct{}

func (s *server) Describe(_ context.Context, _ *exporterrpc.Empty) (*exporterrpc.Descriptor, error) {
	return &exporterrpc.Descriptor{
		Name:    "textdoc",
		Version: "1.0.0",
		Formats: []string{"doc"},
	}, nil
}

func (s *server) Export(_ context.Context, in *exporterrpc.ExportRequest) (*exporterrpc.ExportResponse, error) {
	if in.Format != "doc" {
		return nil, fmt.Errorf("unknown format: %s", in.Format)
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, fmt.Errorf("title is required")
	}

	var b strings.Builder
	b.WriteString("TOPIC: ")
	b.WriteString(in.Title)
	b.WriteString("\n\n")
	for _, line := range strings.Split(in.Markdown, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") {
			b.WriteString(strings.ToUpper(strings.TrimSpace(strings.TrimLeft(trimmed, "#"))))
			b.WriteString("\n")
			continue
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return &exporterrpc.ExportResponse{Content: b.String(), Extension: "doc"}, nil
}

func main() {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: exporterrpc.HandshakeConfig,
		Plugins:         exporterrpc.PluginMap(&server{}),
		GRPCServer:      plugin.DefaultGRPCServer,
	})
}
