package nmea

// Package nmea decodes NMEA-0183 GPS sentences into typed records.
//
// It covers the seven common fix/satellite sentences (GGA, GLL, GSA, GSV,
// RMC, VTG, ZDA), validating the XOR checksum and extracting fields at the
// positions receivers actually emit them. Everything here is a pure
// transformation from one text line to a value or a classified error;
// nothing retains state across calls.
