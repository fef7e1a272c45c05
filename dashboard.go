package main

const dashboardHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>📍 Family Live Locations</title>
    <link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css"
          integrity="sha256-p4NxAoJBhIIN+hmNHrzRCf9tD/miZyoHS5obTRR9BMY=" crossorigin=""/>
    <script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"
            integrity="sha256-20nQCchB9co0qIjJZRGuk2/Z9VM+kNiyxNV1lvTlZBo=" crossorigin=""></script>
    <style>
        * { box-sizing: border-box; margin: 0; padding: 0; }
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Oxygen, Ubuntu, Cantarell, sans-serif;
            background: #f3f4f6;
            min-height: 100vh;
            padding: 16px;
        }
        .topbar {
            display: flex;
            justify-content: space-between;
            align-items: flex-start;
            margin-bottom: 12px;
        }
        .topbar h1 { font-size: 22px; color: #1f2937; }
        .updates {
            text-align: right;
            font-size: 14px;
            color: #374151;
        }
        .updates .hint { font-style: italic; color: #6b7280; }
        #map {
            height: 540px;
            border-radius: 12px;
            box-shadow: 0 10px 30px rgba(0,0,0,0.15);
        }
        .error-banner {
            display: none;
            background: #fee;
            color: #c33;
            padding: 12px;
            border-radius: 8px;
            margin-bottom: 12px;
        }
        .caption {
            margin-top: 10px;
            font-size: 12px;
            color: #6b7280;
            text-align: center;
        }
    </style>
</head>
<body>
    <div class="topbar">
        <h1>👨‍👩‍👧 Family Live Locations</h1>
        <div class="updates" id="updates">
            <div class="hint">Auto-refresh: every 2 minutes</div>
        </div>
    </div>
    <div class="error-banner" id="error">
        No locations found. Check emails, store paths, or device data.
    </div>
    <div id="map"></div>
    <div class="caption">All times shown in IST · Tiles: OpenStreetMap</div>

    <script>
        var map = L.map('map').setView([12.9716, 77.5946], 13);
        L.tileLayer('https://tile.openstreetmap.org/{z}/{x}/{y}.png', {
            maxZoom: 19,
            attribution: '&copy; OpenStreetMap contributors'
        }).addTo(map);

        var markers = [];

        function clearMarkers() {
            for (var i = 0; i < markers.length; i++) {
                map.removeLayer(markers[i]);
            }
            markers = [];
        }

        function renderLocations(results) {
            var updatesEl = document.getElementById('updates');
            var errorEl = document.getElementById('error');
            clearMarkers();

            if (!results || results.length === 0) {
                errorEl.style.display = 'block';
                return;
            }
            errorEl.style.display = 'none';

            var lines = '<div class="hint">Auto-refresh: every 2 minutes</div>';
            var bounds = [];

            for (var i = 0; i < results.length; i++) {
                var r = results[i];
                lines += '<div><b>' + r.display_name + '</b>: ' + r.updated_ist + '</div>';

                var popup = '<b>' + r.display_name + '</b><br>' +
                    'Lat: ' + r.lat.toFixed(6) + ', Lng: ' + r.lng.toFixed(6) + '<br>' +
                    'Updated: ' + r.updated_ist + '<br>' +
                    'Device: ' + r.device_id;

                var opts = { title: r.display_name };
                if (r.icon) {
                    opts.icon = L.icon({
                        iconUrl: r.icon,
                        iconSize: [48, 48],
                        iconAnchor: [24, 48],
                        popupAnchor: [0, -48]
                    });
                }

                var marker = L.marker([r.lat, r.lng], opts).bindPopup(popup).addTo(map);
                markers.push(marker);
                bounds.push([r.lat, r.lng]);
            }

            updatesEl.innerHTML = lines;

            if (bounds.length > 1) {
                map.fitBounds(bounds, { padding: [30, 30] });
            } else {
                map.setView(bounds[0], 14);
            }
        }

        function refreshLocations() {
            fetch('/api/locations')
                .then(function (res) { return res.json(); })
                .then(renderLocations)
                .catch(function (e) { console.error('Error fetching locations:', e); });
        }

        refreshLocations();
        setInterval(refreshLocations, 120000);
    </script>
</body>
</html>`
