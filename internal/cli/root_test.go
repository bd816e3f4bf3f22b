package cli

import (
	"testing"

	"github.com/spf13/viper"
)

func TestRootCommandServesByDefault(t *testing.T) {
	if rootCmd.RunE == nil {
		t.Fatal("running without a subcommand should start the API")
	}

	cmd, _, err := rootCmd.Find([]string{"serve"})
	if err != nil || cmd != serveCmd {
		t.Fatalf("serve subcommand not registered: %v", err)
	}

	if err := rootCmd.Args(rootCmd, []string{"unexpected"}); err == nil {
		t.Fatal("expected positional arguments to be rejected")
	}
}

func TestPortFlagShared(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("port")
	if flag == nil || flag.Shorthand != "p" {
		t.Fatal("port flag should be a persistent root flag")
	}
	if serveCmd.InheritedFlags().Lookup("port") == nil {
		t.Fatal("serve should inherit the port flag")
	}

	if err := rootCmd.PersistentFlags().Set("port", "8081"); err != nil {
		t.Fatalf("setting port: %v", err)
	}
	t.Cleanup(func() {
		rootCmd.PersistentFlags().Set("port", "")
		rootCmd.PersistentFlags().Lookup("port").Changed = false
	})

	if got := viper.GetString("port"); got != "8081" {
		t.Fatalf("viper port = %q, want 8081", got)
	}
}
