/*
Package byteflip bit-reverses hexadecimal byte literals inside tagged regions of a text file.

It was built for bitmap tables in microcontroller sketches whose display wiring
expects the opposite bit order. Mark the table and run byteflip over the file:

	// byteflip-begin
	const uint8_t eye[] = {
	  0x01, 0x03, 0x0F,
	};
	// byteflip-end

Inside the region each 0xNN literal is replaced by its bit-reversed value
(0x01 -> 0x80, 0x0F -> 0xf0). The tag lines themselves and everything outside
the region are copied unchanged, and line terminators are preserved.

# Components

  - pkg/flipper: the per-line literal transform.
  - pkg/scanner: the INACTIVE/ACTIVE region state machine that drives it.
  - pkg/metrics: Prometheus counters for a scan.

# Usage

	stats, err := byteflip.FlipFile("eyeSquare.ino", "flipped.ino")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(stats.LiteralsFlipped, "literals flipped")
*/
package byteflip
