// Command difeq derives a matching equalizer curve from pairs of recordings.
//
// Each pair compares a source file with a reference file; the averaged
// spectral difference across all pairs is smoothed, level-normalized and
// exported as Audacity Filter Curve presets.
//
// Typical use:
//
//	difeq match --pair take1.wav=master1.wav --pair take2.wav=master2.wav --out match.xml
//	difeq show --pair take1.wav=master1.wav --resolution 50
//	difeq inspect match_AV.xml
//	difeq config init > ~/.config/difeq/config.toml
package main
