//go:build android && audio_stub

package game

import "fingermaze/internal/host"

func InitAudio() error              { return nil }
func PlaySound(kind host.SoundKind) {}
func SetSFXVolume(vol float64)      {}
