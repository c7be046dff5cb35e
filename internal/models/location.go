package models

type Location struct {
	Lat float64 `json:"lat" parquet:"name=lat,type=DOUBLE"`
	Lng float64 `json:"lng" parquet:"name=lng,type=DOUBLE"`
}
