package hub

var (
	WriteAtomic    = writeAtomic
	SHA256FromEtag = sha256FromEtag
)
