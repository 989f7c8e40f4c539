package pngme

import "os"

// WriteFileAtomic writes data to a temporary sibling of path and renames it
// over the original, so a failure partway through never leaves path
// truncated. The temporary file is removed on every error path.
func WriteFileAtomic(path string, data []byte) (err error) {
	tmp := path + ".temp"
	defer func() {
		if err != nil {
			os.Remove(tmp)
		}
	}()
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if _, err = f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
