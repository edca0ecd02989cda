// Package enrich provides best-effort context lookups around an incident:
// reverse geocoding (Nominatim), nearby building data (Overpass), driving
// routes (OSRM), current weather (Open-Meteo) and per-address incident
// history (Socrata).
//
// Everything here is decoration, not core data: lookups return nil on any
// failure and never surface errors. Each client owns an unbounded cache
// keyed by rounded coordinates or normalized address; only successful
// results are stored, so a failed key is retried on the next request. The
// domain is one city and the cache lives only as long as the process.
package enrich
