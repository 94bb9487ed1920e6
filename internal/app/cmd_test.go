package app

import "testing"

// TestParseCommand はサブコマンドの解析を検証する。
// 未知のコマンドと空の引数はserveにフォールバックする。
func TestParseCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want Command
	}{
		{name: "empty args", args: nil, want: CommandServe},
		{name: "serve", args: []string{"serve"}, want: CommandServe},
		{name: "migrate", args: []string{"migrate"}, want: CommandMigrate},
		{name: "healthcheck", args: []string{"healthcheck"}, want: CommandHealthcheck},
		{name: "unknown", args: []string{"bogus"}, want: CommandServe},
		{name: "extra args ignored", args: []string{"migrate", "--force"}, want: CommandMigrate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseCommand(tt.args); got != tt.want {
				t.Errorf("ParseCommand(%v) = %s, want %s", tt.args, got, tt.want)
			}
		})
	}
}
