// Package personakit provides prompt template resolution for persona
// generation. It loads named template documents from a Source, caches them
// for the life of the process, and fills {placeholder} markers with values
// derived from statistical reports.
package personakit
