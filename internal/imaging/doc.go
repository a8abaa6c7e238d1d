// Package imaging handles screenshot file I/O: decoding, encoding with
// format options, and the timestamped naming scheme shared by the
// capture and crop tools.
//
// # Naming Scheme
//
// Screenshots are written as screen_<timestamp>[_mN].<ext> where the
// timestamp has microsecond precision and N is a 1-based monitor index
// for multi-monitor captures. Board crops derive their name from the
// source screenshot: screen_X.png becomes board_X.png, so a crop is
// always traceable back to its capture.
package imaging
