package cli

import (
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/vvka-141/mediaurl/pkg/mediaurl"
)

func TestRequireQuery(t *testing.T) {
	cmd := &cobra.Command{Use: "decode <query>"}

	if err := RequireQuery(cmd, []string{"action=listfolder"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := RequireQuery(cmd, nil)
	if err == nil || !strings.Contains(err.Error(), "missing required argument: <query>") {
		t.Fatalf("expected missing argument error, got %v", err)
	}
	if !errors.Is(err, mediaurl.ErrUsage) {
		t.Errorf("expected usage error, got %v", err)
	}

	err = RequireQuery(cmd, []string{"a=b", "c=d"})
	if err == nil || !strings.Contains(err.Error(), "accepts 1 arg(s), received 2") {
		t.Fatalf("expected too many args error, got %v", err)
	}
}
