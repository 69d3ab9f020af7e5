package layout

import stderrors "errors"

var errNilBitmap = stderrors.New("renderer returned nil bitmap")
