package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

// weighctl is the demo client for the weighbridge parsing API: it sends
// sample OCR envelope files to a running server and prints the results.

var baseURL string

var httpClient = &http.Client{Timeout: 30 * time.Second}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rootCmd := newRootCommand()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "weighctl: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "weighctl",
		Short:        "Demo client for the weighbridge certificate parsing API",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&baseURL, "base-url", "http://localhost:8080", "API base URL")
	cmd.AddCommand(
		newHealthCmd(),
		newParseCmd(),
		newBatchCmd(),
		newExportCmd(),
	)
	return cmd
}

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the API server is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := http.NewRequestWithContext(cmd.Context(), http.MethodGet, baseURL+"/api/ocr/health", nil)
			if err != nil {
				return err
			}
			res, err := httpClient.Do(req)
			if err != nil {
				return fmt.Errorf("server unreachable: %w", err)
			}
			defer res.Body.Close()
			if res.StatusCode != http.StatusOK {
				return fmt.Errorf("unexpected health status: %s", res.Status)
			}
			fmt.Println("server is up")
			return nil
		},
	}
}

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <envelope.json...>",
		Short: "Parse OCR envelope files one by one",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				fmt.Printf("== %s\n", filepath.Base(path))
				body, contentType, err := multipartBody("file", path)
				if err != nil {
					return err
				}
				if err := postAndPrint(cmd.Context(), baseURL+"/api/ocr/parse", contentType, body); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newBatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "batch <envelope.json...>",
		Short: "Parse many OCR envelope files in one request",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, contentType, err := multipartBody("files", args...)
			if err != nil {
				return err
			}
			return postAndPrint(cmd.Context(), baseURL+"/api/ocr/parse/batch", contentType, body)
		},
	}
}

func newExportCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export <envelope.json...>",
		Short: "Parse many files and download the XLSX report",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, contentType, err := multipartBody("files", args...)
			if err != nil {
				return err
			}

			req, err := http.NewRequestWithContext(cmd.Context(), http.MethodPost, baseURL+"/api/ocr/parse/batch/export", body)
			if err != nil {
				return err
			}
			req.Header.Set("Content-Type", contentType)

			res, err := httpClient.Do(req)
			if err != nil {
				return err
			}
			defer res.Body.Close()
			if res.StatusCode != http.StatusOK {
				return readAPIError(res)
			}

			out, err := os.Create(output)
			if err != nil {
				return err
			}
			defer out.Close()
			if _, err := io.Copy(out, res.Body); err != nil {
				return err
			}
			fmt.Printf("report written to %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "parse-report.xlsx", "Report output path")
	return cmd
}

func multipartBody(field string, paths ...string) (io.Reader, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for _, path := range paths {
		part, err := writer.CreateFormFile(field, filepath.Base(path))
		if err != nil {
			return nil, "", err
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, "", err
		}
		_, err = io.Copy(part, f)
		f.Close()
		if err != nil {
			return nil, "", err
		}
	}
	if err := writer.Close(); err != nil {
		return nil, "", err
	}
	return &buf, writer.FormDataContentType(), nil
}

func postAndPrint(ctx context.Context, url, contentType string, body io.Reader) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)

	res, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return readAPIError(res)
	}

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, raw, "", "  "); err != nil {
		fmt.Println(string(raw))
		return nil
	}
	fmt.Println(pretty.String())
	return nil
}

func readAPIError(res *http.Response) error {
	raw, _ := io.ReadAll(res.Body)
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Error != "" {
		return fmt.Errorf("%s: %s", res.Status, payload.Error)
	}
	return fmt.Errorf("unexpected response: %s", res.Status)
}
