package store

// ReadMessage reads a plaintext message file, naming path in errors.
func ReadMessage(path string) ([]byte, error) {
	return readFile(path)
}

// WriteMessage writes an extracted message to path. The target is replaced
// only once the whole message is on disk.
func WriteMessage(path string, msg []byte) error {
	return writeFile(path, msg, 0o644)
}
