// Command morphfix makes two SVG path outlines compatible for morphing.
//
// Usage:
//
//	morphfix [--config file] [--debug] fix --from D --to D [flags]
//	morphfix convert --from D --to D [flags]
//	morphfix align --from D --to D [--dump]
//
// fix reorders, subdivides and converts the commands of one subpath of both
// paths until they can be interpolated command by command, and prints the
// resulting path data. convert only converts command kinds. align prints the
// alignment fix would use.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
