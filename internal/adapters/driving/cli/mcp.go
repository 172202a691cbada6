package cli

import (
	"fmt"
	"net"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sercha-docparse/internal/adapters/driving/mcp"
	"github.com/custodia-labs/sercha-docparse/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-docparse/internal/logger"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

The server offers a parse_file tool for local files and, when a Google
access token is available, a read_drive_file tool for Drive files.

By default, the server communicates over stdio using JSON-RPC. Use --port
to start an HTTP server instead. The HTTP server listens on loopback only;
parse_file reads any file this process can, so pass --listen to expose it
on another interface only on a trusted network.

Examples:
  # Stdio mode (default)
  docparse mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  docparse mcp serve --port 8080

  # HTTP mode on all interfaces
  docparse mcp serve --port 8080 --listen 0.0.0.0`,
	RunE: runMCPServe,
}

// defaultListenHost keeps the HTTP server off external interfaces.
const defaultListenHost = "127.0.0.1"

var (
	mcpAccessToken string
	mcpListenHost  string
)

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpServeCmd.Flags().StringVar(&mcpListenHost, "listen", defaultListenHost, "HTTP listen address")
	mcpServeCmd.Flags().StringVar(&mcpAccessToken, "access-token", "", "Google OAuth access token for read_drive_file")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

// buildMCPPorts assembles the server ports from the configured services.
// Drive is left out when no fetcher can be built.
func buildMCPPorts(cmd *cobra.Command) (*mcp.Ports, error) {
	if parserFactory == nil {
		return nil, errParserNotConfigured
	}
	settings, err := effectiveSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	parser, err := parserFactory(ParserOptions{
		ChunkSize: settings.Chunker.ChunkSize,
		Overlap:   settings.Chunker.Overlap,
	})
	if err != nil {
		return nil, err
	}

	var drive driven.FileFetcher
	if driveFactory != nil {
		drive, err = driveFactory(cmd.Context(), mcpAccessToken)
		if err != nil {
			logger.Warn("read_drive_file disabled: %v", err)
			drive = nil
		}
	}

	return &mcp.Ports{
		Parser:   parser,
		Formats:  formatCatalog,
		Files:    fileFetcher,
		Drive:    drive,
		MaxChars: settings.Output.MaxChars,
	}, nil
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	ports, err := buildMCPPorts(cmd)
	if err != nil {
		return err
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	if port > 0 {
		addr := listenAddr(mcpListenHost, port)
		if !isLoopback(mcpListenHost) {
			logger.Warn("MCP server exposed on %s: any client that reaches it can read local files", addr)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on http://%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}

// listenAddr joins host and port, falling back to loopback for an empty host.
func listenAddr(host string, port int) string {
	if host == "" {
		host = defaultListenHost
	}
	return net.JoinHostPort(host, strconv.Itoa(port))
}

func isLoopback(host string) bool {
	if host == "" || host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
