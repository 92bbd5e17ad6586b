// Package eqxml reads and writes equalizer curves in the XML preset format
// of Audacity's Filter Curve EQ effect:
//
//	<equalizationeffect>
//		<curve name="match">
//			<point f="20.0" d="-1.5"></point>
//		</curve>
//	</equalizationeffect>
//
// Frequencies are in Hz and gains in dB. Numbers are written in their
// shortest round-trip decimal form, always with a fractional part.
package eqxml
