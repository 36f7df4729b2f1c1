package l9733

type halDebug struct {
	id   string
	l    Logger
	next HAL
}

func (h *halDebug) Tx(w, r []byte) error {
	h.l.Printf("%5s >>  tx(%d,%d)", h.id, len(w), len(r))
	if len(w) > 0 {
		h.l.Printf("%s", hexDump(w))
	}
	err := h.next.Tx(w, r)
	h.l.Printf("%5s <<  tx %+v", h.id, err)
	if err == nil && len(r) > 0 {
		h.l.Printf("%s", hexDump(r))
	}
	return err
}
