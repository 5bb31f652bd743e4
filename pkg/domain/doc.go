/*
Package domain contains the core models shared by the byteflip components.

It defines the region state machine vocabulary (RegionState, the tag markers),
the events emitted when a region opens or closes, and the sentinel errors the
I/O layer wraps. This package is kept pure and free of I/O.

# Key Entities

  - RegionState: whether the scanner is inside a tagged region (INACTIVE or ACTIVE).
  - StartTag / EndTag: fixed substrings that open and close a region.
  - RegionEvent: a structural description of a region boundary, delivered through ScanHooks.
*/
package domain
