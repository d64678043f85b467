package apb

const (
	// ADDR_WIDTH_DEFAULT is the PADDR width assumed when unconfigured.
	ADDR_WIDTH_DEFAULT = 32
	// DATA_WIDTH_DEFAULT is the PWDATA/PRDATA width assumed when unconfigured.
	DATA_WIDTH_DEFAULT = 32

	// ADDR_WIDTH_MAX is the widest representable PADDR.
	ADDR_WIDTH_MAX = 64
	// DATA_WIDTH_MAX is the widest representable PWDATA/PRDATA.
	DATA_WIDTH_MAX = 64
)

// Config fixes the bus geometry at monitor construction. It is never
// consulted per tick.
type Config struct {
	AddrWidth uint // PADDR width in bits (1..64). 0 selects the default.
	DataWidth uint // Data width in bits (multiple of 8, up to 64). 0 selects the default.
}

// StrobeWidth returns the PSTRB width, one bit per data byte.
func (cfg Config) StrobeWidth() uint {
	return cfg.DataWidth / 8
}

// Validate applies defaults for zero widths and checks the geometry.
// This is the only fatal error path: it must pass before the first
// tick is processed.
func (cfg *Config) Validate() (err error) {
	if cfg.AddrWidth == 0 {
		cfg.AddrWidth = ADDR_WIDTH_DEFAULT
	}
	if cfg.DataWidth == 0 {
		cfg.DataWidth = DATA_WIDTH_DEFAULT
	}

	if cfg.AddrWidth > ADDR_WIDTH_MAX {
		err = ErrAddrWidth
		return
	}

	if cfg.DataWidth%8 != 0 || cfg.DataWidth > DATA_WIDTH_MAX {
		err = ErrDataWidth
		return
	}

	return
}
