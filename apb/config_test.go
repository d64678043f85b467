package apb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		config Config
		err    error
	}){
		{"defaults", Config{}, nil},
		{"narrow", Config{AddrWidth: 12, DataWidth: 8}, nil},
		{"wide", Config{AddrWidth: 64, DataWidth: 64}, nil},
		{"addr_too_wide", Config{AddrWidth: 65}, ErrAddrWidth},
		{"data_not_bytes", Config{DataWidth: 12}, ErrDataWidth},
		{"data_too_wide", Config{DataWidth: 72}, ErrDataWidth},
	}

	for _, entry := range table {
		err := entry.config.Validate()
		if entry.err == nil {
			assert.NoError(err, entry.name)
		} else {
			assert.ErrorIs(err, entry.err, entry.name)
		}
	}
}

func TestConfigDefaults(t *testing.T) {
	assert := assert.New(t)

	config := Config{}
	assert.NoError(config.Validate())
	assert.Equal(uint(ADDR_WIDTH_DEFAULT), config.AddrWidth)
	assert.Equal(uint(DATA_WIDTH_DEFAULT), config.DataWidth)
	assert.Equal(uint(4), config.StrobeWidth())
}
