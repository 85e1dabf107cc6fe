/*
 * MIT License
 *
 * Copyright (c) 2024 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

// Package driverconfig loads the process-wide configuration knobs spec.md
// §9 enumerates, using github.com/spf13/viper the way this module's
// logger/spf13.go bridges into the same spf13 ecosystem. Knobs is the
// pre-conclude, user-overridable record the driver's context fills
// defaults into and validates (driverctx package).
package driverconfig

import (
	"time"

	"github.com/spf13/viper"
)

// Knobs is every configuration value spec.md §9 enumerates, decoded from
// process-wide properties at startup.
type Knobs struct {
	UseWindowsHighResTimer  bool
	WarnIfDirectoryExists   bool
	DirDeleteOnStart        bool
	TermBufferSparseFile    bool
	SpiesSimulateConnection bool

	ClientLivenessTimeout     time.Duration
	ImageLivenessTimeout      time.Duration
	PublicationUnblockTimeout time.Duration
	StatusMessageTimeout      time.Duration
	DriverTimeout             time.Duration

	MaxTermBufferLength           int
	PublicationTermBufferLength   int
	IPCPublicationTermBufferLength int
	InitialWindowLength            int
	MTULength                      int
	IPCMTULength                   int

	ThreadingMode string

	IdleStrategyConductor     string
	IdleStrategySender        string
	IdleStrategyReceiver      string
	IdleStrategyShared        string
	IdleStrategySharedNetwork string

	DirectoryPath string
}

// keys mirror spec.md §9's knob names as dotted viper keys.
const (
	keyUseWindowsHighResTimer  = "use_windows_high_res_timer"
	keyWarnIfDirectoryExists   = "warn_if_directory_exists"
	keyDirDeleteOnStart        = "dir_delete_on_start"
	keyTermBufferSparseFile    = "term_buffer_sparse_file"
	keySpiesSimulateConnection = "spies_simulate_connection"

	keyClientLivenessTimeoutNs     = "client_liveness_timeout_ns"
	keyImageLivenessTimeoutNs      = "image_liveness_timeout_ns"
	keyPublicationUnblockTimeoutNs = "publication_unblock_timeout_ns"
	keyStatusMessageTimeoutNs      = "status_message_timeout_ns"
	keyDriverTimeoutMs             = "driver_timeout_ms"

	keyMaxTermBufferLength            = "max_term_buffer_length"
	keyPublicationTermBufferLength    = "publication_term_buffer_length"
	keyIPCPublicationTermBufferLength = "ipc_publication_term_buffer_length"
	keyInitialWindowLength            = "initial_window_length"
	keyMTULength                      = "mtu_length"
	keyIPCMTULength                   = "ipc_mtu_length"

	keyThreadingMode = "threading_mode"

	keyIdleStrategyConductor     = "idle_strategy.conductor"
	keyIdleStrategySender        = "idle_strategy.sender"
	keyIdleStrategyReceiver      = "idle_strategy.receiver"
	keyIdleStrategyShared        = "idle_strategy.shared"
	keyIdleStrategySharedNetwork = "idle_strategy.shared_network"

	keyDirectoryPath = "directory_path"
)

// applyDefaults registers every knob's default value on v, following this
// module's pattern of centralizing spf13/viper defaults before Unmarshal.
func applyDefaults(v *viper.Viper) {
	v.SetDefault(keyUseWindowsHighResTimer, false)
	v.SetDefault(keyWarnIfDirectoryExists, true)
	v.SetDefault(keyDirDeleteOnStart, false)
	v.SetDefault(keyTermBufferSparseFile, false)
	v.SetDefault(keySpiesSimulateConnection, false)

	v.SetDefault(keyClientLivenessTimeoutNs, int64(10*time.Second))
	v.SetDefault(keyImageLivenessTimeoutNs, int64(10*time.Second))
	v.SetDefault(keyPublicationUnblockTimeoutNs, int64(15*time.Second))
	v.SetDefault(keyStatusMessageTimeoutNs, int64(200*time.Millisecond))
	v.SetDefault(keyDriverTimeoutMs, int64(10_000))

	v.SetDefault(keyMaxTermBufferLength, 1<<24)
	v.SetDefault(keyPublicationTermBufferLength, 1<<24)
	v.SetDefault(keyIPCPublicationTermBufferLength, 1<<24)
	v.SetDefault(keyInitialWindowLength, 128*1024)
	v.SetDefault(keyMTULength, 1408)
	v.SetDefault(keyIPCMTULength, 1408)

	v.SetDefault(keyThreadingMode, "SHARED")

	v.SetDefault(keyIdleStrategyConductor, "backoff")
	v.SetDefault(keyIdleStrategySender, "backoff")
	v.SetDefault(keyIdleStrategyReceiver, "backoff")
	v.SetDefault(keyIdleStrategyShared, "backoff")
	v.SetDefault(keyIdleStrategySharedNetwork, "backoff")

	v.SetDefault(keyDirectoryPath, "")
}

// Load reads every knob from v (which the caller has already pointed at
// process-wide properties: env vars, a config file, flags bound via
// viper.BindPFlag, etc.) applying defaults for anything unset.
func Load(v *viper.Viper) *Knobs {
	if v == nil {
		v = viper.New()
	}
	applyDefaults(v)

	return &Knobs{
		UseWindowsHighResTimer:  v.GetBool(keyUseWindowsHighResTimer),
		WarnIfDirectoryExists:   v.GetBool(keyWarnIfDirectoryExists),
		DirDeleteOnStart:        v.GetBool(keyDirDeleteOnStart),
		TermBufferSparseFile:    v.GetBool(keyTermBufferSparseFile),
		SpiesSimulateConnection: v.GetBool(keySpiesSimulateConnection),

		ClientLivenessTimeout:     time.Duration(v.GetInt64(keyClientLivenessTimeoutNs)),
		ImageLivenessTimeout:      time.Duration(v.GetInt64(keyImageLivenessTimeoutNs)),
		PublicationUnblockTimeout: time.Duration(v.GetInt64(keyPublicationUnblockTimeoutNs)),
		StatusMessageTimeout:      time.Duration(v.GetInt64(keyStatusMessageTimeoutNs)),
		DriverTimeout:             time.Duration(v.GetInt64(keyDriverTimeoutMs)) * time.Millisecond,

		MaxTermBufferLength:            v.GetInt(keyMaxTermBufferLength),
		PublicationTermBufferLength:    v.GetInt(keyPublicationTermBufferLength),
		IPCPublicationTermBufferLength: v.GetInt(keyIPCPublicationTermBufferLength),
		InitialWindowLength:            v.GetInt(keyInitialWindowLength),
		MTULength:                      v.GetInt(keyMTULength),
		IPCMTULength:                   v.GetInt(keyIPCMTULength),

		ThreadingMode: v.GetString(keyThreadingMode),

		IdleStrategyConductor:     v.GetString(keyIdleStrategyConductor),
		IdleStrategySender:        v.GetString(keyIdleStrategySender),
		IdleStrategyReceiver:      v.GetString(keyIdleStrategyReceiver),
		IdleStrategyShared:        v.GetString(keyIdleStrategyShared),
		IdleStrategySharedNetwork: v.GetString(keyIdleStrategySharedNetwork),

		DirectoryPath: v.GetString(keyDirectoryPath),
	}
}
