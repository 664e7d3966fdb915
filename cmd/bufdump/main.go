package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"bytekit/internal/config"
	"bytekit/internal/logger"
	"bytekit/internal/membuf"
	"bytekit/internal/types"
)

func main() {
	configDir := flag.String("configdir", "configs", "Path to config directory")
	decode := flag.String("decode", "", "Decode an integer field at -offset: u8, i8, u16le, u16be, i16le, i16be, u32le, u32be, i32le or i32be")
	offset := flag.Int("offset", 0, "Offset of the field named by -decode")
	flag.Parse()

	cfg := new(types.Config)
	iniPath := filepath.Join(*configDir, "bufdump.ini")
	if _, err := os.Stat(iniPath); err == nil {
		if err := config.LoadIni(cfg, iniPath); err != nil {
			// Use standard fmt before logger is initialized.
			fmt.Fprintf(os.Stderr, "Fatal: failed to load config file '%s': %v\n", iniPath, err)
			os.Exit(1)
		}
	}
	cfg.Defaults()

	if err := logger.Init(cfg.LogConf); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal: failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	in := io.Reader(os.Stdin)
	name := "stdin"
	if flag.NArg() > 0 {
		name = flag.Arg(0)
		f, err := os.Open(name)
		if err != nil {
			logger.Fatal().Err(err).Msgf("failed to open input file '%s'", name)
		}
		defer f.Close()
		in = f
	}

	data, err := io.ReadAll(in)
	if err != nil {
		logger.Fatal().Err(err).Msgf("failed to read '%s'", name)
	}

	b, err := membuf.FromBytes(data)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to allocate buffer")
	}
	defer b.Release()

	logger.Info().Str("input", name).Int("bytes", b.Len()).Msg("buffer loaded")

	if *decode != "" {
		if err := decodeField(b, *decode, *offset); err != nil {
			logger.Fatal().Err(err).Msgf("failed to decode %s at offset %d", *decode, *offset)
		}
	}

	writeDump(os.Stdout, b, cfg.DumpConf)
}

// decodeField reads one integer field from b and prints it.
func decodeField(b *membuf.Buffer, kind string, off int) error {
	var (
		value int64
		err   error
	)
	switch kind {
	case "u8":
		var v uint8
		v, err = b.Uint8(off)
		value = int64(v)
	case "i8":
		var v int8
		v, err = b.Int8(off)
		value = int64(v)
	case "u16le":
		var v uint16
		v, err = b.Uint16LE(off)
		value = int64(v)
	case "u16be":
		var v uint16
		v, err = b.Uint16BE(off)
		value = int64(v)
	case "i16le":
		var v int16
		v, err = b.Int16LE(off)
		value = int64(v)
	case "i16be":
		var v int16
		v, err = b.Int16BE(off)
		value = int64(v)
	case "u32le":
		var v uint32
		v, err = b.Uint32LE(off)
		value = int64(v)
	case "u32be":
		var v uint32
		v, err = b.Uint32BE(off)
		value = int64(v)
	case "i32le":
		var v int32
		v, err = b.Int32LE(off)
		value = int64(v)
	case "i32be":
		var v int32
		v, err = b.Int32BE(off)
		value = int64(v)
	default:
		return fmt.Errorf("unknown field kind '%s'", kind)
	}
	if err != nil {
		return err
	}
	fmt.Printf("%s@%d = %d\n", kind, off, value)
	return nil
}

// writeDump renders b line by line through the bounds-checked accessor.
func writeDump(w io.Writer, b *membuf.Buffer, cfg types.DumpConf) {
	for line := 0; line < b.Len(); line += cfg.BytesPerLine {
		if cfg.ShowOffsets {
			fmt.Fprintf(w, "%08x ", line)
		}
		for off := line; off < line+cfg.BytesPerLine && off < b.Len(); off++ {
			c, err := b.Byte(off)
			if err != nil {
				return
			}
			fmt.Fprintf(w, " %02x", c)
		}
		fmt.Fprintln(w)
	}
}
